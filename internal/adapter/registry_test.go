package adapter

import (
	"errors"
	"testing"
	"time"

	"github.com/phenobase/trait-extractor/constants"
	"github.com/phenobase/trait-extractor/internal/common"
	"github.com/phenobase/trait-extractor/internal/profile"
)

func testRegistry(t *testing.T, runner Runner) *Registry {
	t.Helper()
	profiles, err := profile.New([]profile.Profile{
		{Name: "spacy-sm", Backend: constants.BackendSpacy},
		{Name: "hf-bert", Backend: constants.BackendHuggingFace},
	})
	if err != nil {
		t.Fatal(err)
	}
	return NewRegistry(NewFactory(nil, runner), profiles, nil)
}

func TestRegistryPreservesIdentity(t *testing.T) {
	r := testRegistry(t, &fakeRunner{})

	first, err := r.Get("spacy-sm")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := r.Get("spacy-sm")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if first != second {
		t.Error("Get returned a different instance for the same profile")
	}
}

func TestRegistryUnknownProfile(t *testing.T) {
	r := testRegistry(t, &fakeRunner{})
	if _, err := r.Get("missing"); !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("Get error = %v, want ErrConfiguration", err)
	}
	if _, _, err := r.Acquire("missing"); !errors.Is(err, common.ErrConfiguration) {
		t.Errorf("Acquire error = %v, want ErrConfiguration", err)
	}
}

func TestRegistryAcquireSerializes(t *testing.T) {
	r := testRegistry(t, &fakeRunner{})

	a, release, err := r.Acquire("spacy-sm")
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	acquired := make(chan Adapter)
	go func() {
		b, rel, err := r.Acquire("spacy-sm")
		if err != nil {
			panic(err)
		}
		defer rel()
		acquired <- b
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-acquired:
		t.Fatal("second Acquire succeeded while the lock was held")
	default:
	}

	release()
	if b := <-acquired; b != a {
		t.Error("Acquire returned a different instance after release")
	}
}

func TestRegistryLoadedSorted(t *testing.T) {
	r := testRegistry(t, &fakeRunner{})
	if got := r.Loaded(); len(got) != 0 {
		t.Fatalf("Loaded = %v before any Get", got)
	}
	if _, err := r.Get("spacy-sm"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("hf-bert"); err != nil {
		t.Fatal(err)
	}

	got := r.Loaded()
	if len(got) != 2 || got[0] != "hf-bert" || got[1] != "spacy-sm" {
		t.Errorf("Loaded = %v, want [hf-bert spacy-sm]", got)
	}
}

func TestRegistryUnload(t *testing.T) {
	r := testRegistry(t, &fakeRunner{})

	// unloading a never-loaded profile is a no-op
	if err := r.Unload("spacy-sm"); err != nil {
		t.Fatalf("Unload: %v", err)
	}

	first, err := r.Get("spacy-sm")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Unload("spacy-sm"); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	if got := r.Loaded(); len(got) != 0 {
		t.Errorf("Loaded = %v after Unload", got)
	}

	second, err := r.Get("spacy-sm")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Error("Get returned the evicted instance")
	}
}

func TestRegistryUnloadAll(t *testing.T) {
	r := testRegistry(t, &fakeRunner{})
	if _, err := r.Get("spacy-sm"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Get("hf-bert"); err != nil {
		t.Fatal(err)
	}
	if err := r.UnloadAll(); err != nil {
		t.Fatalf("UnloadAll: %v", err)
	}
	if got := r.Loaded(); len(got) != 0 {
		t.Errorf("Loaded = %v after UnloadAll", got)
	}
}
