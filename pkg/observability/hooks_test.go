package observability

import "testing"

type recordingHooks struct {
	NoopSearchHooks
	started   int
	completed int
}

func (r *recordingHooks) OnSearchStart(width, depth, candidates, workers int) { r.started++ }
func (r *recordingHooks) OnTaskComplete(index int, found uint64)              { r.completed++ }

func TestSetAndGetSearchHooks(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetSearchHooks(rec)

	Search().OnSearchStart(8, 6, 74, 16)
	Search().OnTaskComplete(0, 1)
	Search().OnTaskComplete(1, 0)

	if rec.started != 1 || rec.completed != 2 {
		t.Errorf("hooks saw %d starts and %d completions", rec.started, rec.completed)
	}
}

func TestNilHooksIgnored(t *testing.T) {
	defer Reset()

	SetSearchHooks(nil)
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("nil registration should keep the no-op hooks")
	}
}

func TestResetRestoresNoops(t *testing.T) {
	SetSearchHooks(&recordingHooks{})
	SetCatalogHooks(NoopCatalogHooks{})
	Reset()

	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Reset should restore no-op search hooks")
	}
	if _, ok := Catalog().(NoopCatalogHooks); !ok {
		t.Error("Reset should restore no-op catalog hooks")
	}
}
