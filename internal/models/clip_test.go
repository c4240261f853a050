package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddTextAssignsIncreasingIDs(t *testing.T) {
	clipboard := NewClipboard()
	for want := 0; want < 5; want++ {
		clip := clipboard.AddText("clip", "body")
		if clip.ID != want {
			t.Fatalf("expected id %d, got %d", want, clip.ID)
		}
	}
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	clipboard := NewClipboard()

	a := clipboard.AddText("Snippet A", "hello")
	b := clipboard.AddText("Snippet B", "world")
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("expected ids 0 and 1, got %d and %d", a.ID, b.ID)
	}

	if !clipboard.DeleteText(0) {
		t.Fatalf("expected delete of id 0 to remove a clip")
	}

	c := clipboard.AddText("Snippet C", "!")
	if c.ID != 2 {
		t.Fatalf("expected id 2, got %d", c.ID)
	}
}

func TestDeletingLargestIDFreesIt(t *testing.T) {
	clipboard := NewClipboard()
	clipboard.AddImage("Cat", "/pics/cat.png")
	last := clipboard.AddImage("Dog", "/pics/dog.png")

	clipboard.DeleteImage(last.ID)

	if next := clipboard.AddImage("Bird", "/pics/bird.png"); next.ID != last.ID {
		t.Fatalf("expected id %d to be handed out again, got %d", last.ID, next.ID)
	}
}

func TestTextAndImageIDSpacesAreIndependent(t *testing.T) {
	clipboard := NewClipboard()
	clipboard.AddText("a", "a")
	clipboard.AddText("b", "b")

	image := clipboard.AddImage("cat", "/tmp/cat.png")
	if image.ID != 0 {
		t.Fatalf("expected first image id 0, got %d", image.ID)
	}
}

func TestNextIDUsesMaxNotLength(t *testing.T) {
	items := []TextClip{{ID: 7}, {ID: 2}}
	if got := NextID(items); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if got := NextID([]ImageClip{}); got != 0 {
		t.Fatalf("expected 0 for empty collection, got %d", got)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	clipboard := NewClipboard()
	clipboard.AddText("a", "1")
	clipboard.AddText("b", "2")

	if !clipboard.DeleteText(0) {
		t.Fatalf("first delete should remove the clip")
	}
	before := clipboard.Clone()
	if clipboard.DeleteText(0) {
		t.Fatalf("second delete should be a no-op")
	}
	if diff := cmp.Diff(before, clipboard); diff != "" {
		t.Fatalf("clipboard changed on repeated delete (-want +got):\n%s", diff)
	}
}

func TestEditMissingIDLeavesCollectionUnchanged(t *testing.T) {
	clipboard := NewClipboard()
	clipboard.AddText("a", "1")
	clipboard.AddImage("pic", "/p.png")
	before := clipboard.Clone()

	if clipboard.EditText(42, "x", "y") {
		t.Fatalf("expected edit of missing text id to report false")
	}
	if clipboard.EditImage(42, "x", "y") {
		t.Fatalf("expected edit of missing image id to report false")
	}
	if diff := cmp.Diff(before, clipboard); diff != "" {
		t.Fatalf("clipboard changed (-want +got):\n%s", diff)
	}
}

func TestEditKeepsIDAndOrder(t *testing.T) {
	clipboard := NewClipboard()
	clipboard.AddImage("one", "/1.png")
	clipboard.AddImage("two", "/2.png")
	clipboard.AddImage("three", "/3.png")

	if !clipboard.EditImage(1, "deux", `C:\images\2.webp`) {
		t.Fatalf("expected edit to apply")
	}

	want := []ImageClip{
		{ID: 0, Name: "one", Path: "/1.png"},
		{ID: 1, Name: "deux", Path: `C:\images\2.webp`},
		{ID: 2, Name: "three", Path: "/3.png"},
	}
	if diff := cmp.Diff(want, clipboard.ImageClips); diff != "" {
		t.Fatalf("unexpected image clips (-want +got):\n%s", diff)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	original := NewClipboard()
	original.AddText("a", "1")

	clone := original.Clone()
	clone.EditText(0, "b", "2")
	clone.AddText("c", "3")

	if original.TextClips[0].Name != "a" || len(original.TextClips) != 1 {
		t.Fatalf("original mutated through clone: %+v", original.TextClips)
	}
}

func TestFind(t *testing.T) {
	clipboard := NewClipboard()
	clipboard.AddImage("pic", "/p.png")

	clip, ok := clipboard.FindImage(0)
	if !ok || clip.Path != "/p.png" {
		t.Fatalf("expected to find image 0, got %+v (found=%v)", clip, ok)
	}
	if _, ok := clipboard.FindText(0); ok {
		t.Fatalf("did not expect a text clip")
	}
}
