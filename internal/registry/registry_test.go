package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/bounce/internal/media"
	"github.com/vovakirdan/bounce/internal/media/mediatest"
)

func fakeFactory(opts media.Options) media.Backend {
	return mediatest.New()
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-a", fakeFactory)

	if !Exists("test-a") {
		t.Fatal("Exists(test-a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	b, err := Create("test-a", media.Options{KeyHold: 100 * time.Millisecond})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.ID() != "fake" {
		t.Errorf("ID() = %q, expected %q", b.ID(), "fake")
	}

	if _, err := Create("missing", media.Options{}); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-z", fakeFactory)
	Register("test-m", fakeFactory)

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
	for _, info := range list {
		if info.ID == "test-m" && info.Title != "In-memory test backend" {
			t.Errorf("Title = %q, expected the backend title", info.Title)
		}
	}
}

func TestDuplicatePanics(t *testing.T) {
	Register("test-dup", fakeFactory)

	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate ID should panic")
		}
	}()
	Register("test-dup", fakeFactory)
}
