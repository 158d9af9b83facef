package registry

import (
	"errors"
	"strings"
	"time"

	"github.com/danieljhkim/tabgroups/internal/clock"
	"github.com/danieljhkim/tabgroups/internal/fsops"
)

// fakeLayout is an in-memory LayoutPort.
type fakeLayout struct {
	blob       []byte
	captureErr error
	replayed   [][]byte
	replayErr  error
}

func (f *fakeLayout) CaptureLayout() ([]byte, error) {
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	return append([]byte(nil), f.blob...), nil
}

func (f *fakeLayout) ReplayLayout(blob []byte) error {
	if f.replayErr != nil {
		return f.replayErr
	}
	f.replayed = append(f.replayed, append([]byte(nil), blob...))
	return nil
}

// fakeDocs is an in-memory DocumentPort.
type fakeDocs struct {
	open     []string
	enumErr  error
	failOpen map[string]bool
	opened   []string
}

func (f *fakeDocs) OpenDocuments() ([]string, error) {
	if f.enumErr != nil {
		return nil, f.enumErr
	}
	return append([]string(nil), f.open...), nil
}

func (f *fakeDocs) Open(path string) error {
	if f.failOpen[path] {
		return errors.New("document rejected")
	}
	f.opened = append(f.opened, path)
	for _, d := range f.open {
		if strings.EqualFold(d, path) {
			return nil
		}
	}
	f.open = append(f.open, path)
	return nil
}

func (f *fakeDocs) CloseAll(match func(path string) bool) error {
	kept := f.open[:0]
	for _, d := range f.open {
		if !match(d) {
			kept = append(kept, d)
		}
	}
	f.open = kept
	return nil
}

// fakeConfirm answers prompts with a fixed response and records them.
type fakeConfirm struct {
	answer  bool
	prompts []string
}

func (f *fakeConfirm) Confirm(prompt string) bool {
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

// memSettings is an in-memory settings store that counts writes.
type memSettings struct {
	values map[string]string
	sets   int
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (m *memSettings) Get(collection, property string) (string, bool, error) {
	v, ok := m.values[collection+"\x00"+property]
	return v, ok, nil
}

func (m *memSettings) Set(collection, property, value string) error {
	m.sets++
	m.values[collection+"\x00"+property] = value
	return nil
}

func (m *memSettings) Delete(collection, property string) error {
	delete(m.values, collection+"\x00"+property)
	return nil
}

// testEnv bundles a registry over fakes for most tests.
type testEnv struct {
	reg      *Registry
	layout   *fakeLayout
	docs     *fakeDocs
	confirm  *fakeConfirm
	settings *memSettings
	clk      *clock.FakeClock
}

func newTestEnv(workspaceKey string) *testEnv {
	env := &testEnv{
		layout:   &fakeLayout{blob: []byte{0xAA}},
		docs:     &fakeDocs{},
		confirm:  &fakeConfirm{answer: true},
		settings: newMemSettings(),
		clk:      clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	}
	env.reg = New(fsops.NewRealFS(), env.settings, env.layout, env.docs, env.confirm, Options{
		Clock: env.clk,
	})
	if workspaceKey != "" {
		env.reg.SetWorkspace(workspaceKey)
	}
	return env
}
