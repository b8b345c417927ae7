package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/library"
)

func TestImportBooks(t *testing.T) {
	mgr, err := library.NewLibraryManager(library.NewMemoryStore(), nil, nil)
	require.NoError(t, err)

	input := strings.Join([]string{
		"# id\ttitle\tauthor",
		"A1\tRefactoring\tMartin Fowler",
		"",
		"A2\tThe Pragmatic Programmer",
		"A1\tDuplicate\tSomeone",
		"\tNo Id\tAnon",
	}, "\n")

	var out bytes.Buffer
	ok, failed := importBooks(mgr, strings.NewReader(input), &out)

	assert.Equal(t, 2, ok)
	assert.Equal(t, 2, failed)
	require.Len(t, mgr.Books(), 2)
	assert.Equal(t, "", mgr.Books()[1].Author)
	assert.Contains(t, out.String(), "SUCCESS (ID: A1)")
	assert.Contains(t, out.String(), "SKIPPED")
}

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", truncateString("short", 10))
	assert.Equal(t, "The Pra...", truncateString("The Pragmatic Programmer", 10))
	assert.Equal(t, "Th", truncateString("The", 2))
}
