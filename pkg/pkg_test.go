package pkg

import (
	"slices"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	if Name != "shy" {
		t.Errorf("Name = %q, want %q", Name, "shy")
	}
}

func TestDescription(t *testing.T) {
	if Description == "" {
		t.Error("Description must not be empty")
	}
}

func TestVersion(t *testing.T) {
	if strings.TrimSpace(Version) == "" {
		t.Error("Version embedded from VERSION must not be empty")
	}
}

func TestAuthor(t *testing.T) {
	if len(Author) == 0 {
		t.Fatal("Author must have at least one entry")
	}

	if !slices.ContainsFunc(Author, func(a AuthorInfo) bool {
		return a.Name == "Paul Chernoch" && a.Email == "paulchernoch@gmail.com"
	}) {
		t.Errorf("Author = %+v, want to contain Paul Chernoch", Author)
	}
}

func TestAuthorStruct(t *testing.T) {
	for i, author := range Author {
		if author.Name == "" && author.Email == "" {
			t.Errorf("Author[%d] must define at least Name or Email", i)
		}
	}
}
