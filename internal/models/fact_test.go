package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactInputValidate(t *testing.T) {
	valid := FactInput{
		Text:     "Bees can recognize faces",
		Source:   "http://example.com",
		Category: "science",
	}

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("empty text", func(t *testing.T) {
		in := valid
		in.Text = ""
		err := in.Validate()
		require.Error(t, err)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "text", ve.Field)
	})

	t.Run("text at the cap is fine", func(t *testing.T) {
		in := valid
		in.Text = strings.Repeat("a", 200)
		assert.NoError(t, in.Validate())
	})

	t.Run("text over the cap", func(t *testing.T) {
		in := valid
		in.Text = strings.Repeat("a", 201)
		assert.Error(t, in.Validate())
	})

	t.Run("source is not a url", func(t *testing.T) {
		in := valid
		in.Source = "not a url"
		assert.Error(t, in.Validate())
	})

	t.Run("source scheme must be http or https", func(t *testing.T) {
		in := valid
		in.Source = "ftp://example.com/facts"
		assert.Error(t, in.Validate())

		in.Source = "https://example.com/facts"
		assert.NoError(t, in.Validate())
	})

	t.Run("empty category", func(t *testing.T) {
		in := valid
		in.Category = ""
		assert.Error(t, in.Validate())
	})

	t.Run("unknown category", func(t *testing.T) {
		in := valid
		in.Category = "Science" // case-sensitive
		assert.Error(t, in.Validate())
	})
}

func TestValidSourceURL(t *testing.T) {
	assert.True(t, ValidSourceURL("http://example.com"))
	assert.True(t, ValidSourceURL("https://en.wikipedia.org/wiki/Lisbon"))
	assert.False(t, ValidSourceURL("not a url"))
	assert.False(t, ValidSourceURL("example.com"))   // no scheme
	assert.False(t, ValidSourceURL("https://"))      // no host
	assert.False(t, ValidSourceURL("mailto:a@b.co")) // wrong scheme
}

func TestDisputed(t *testing.T) {
	disputed := Fact{VoteInteresting: 1, VoteMindblowing: 0, VoteFalse: 2}
	assert.True(t, disputed.Disputed())

	fine := Fact{VoteInteresting: 2, VoteMindblowing: 0, VoteFalse: 1}
	assert.False(t, fine.Disputed())

	// A tie is not disputed.
	tie := Fact{VoteInteresting: 1, VoteMindblowing: 1, VoteFalse: 2}
	assert.False(t, tie.Disputed())
}

func TestFactJSONShape(t *testing.T) {
	fact := Fact{
		ID:              7,
		Text:            "Lisbon is the capital of Portugal",
		Source:          "https://en.wikipedia.org/wiki/Lisbon",
		Category:        "society",
		VoteInteresting: 1,
		VoteFalse:       2,
	}

	data, err := json.Marshal(fact)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.EqualValues(t, 7, decoded["id"])
	assert.Equal(t, "society", decoded["category"])
	assert.EqualValues(t, 1, decoded["voteInteresting"])
	assert.EqualValues(t, 0, decoded["voteMindblowing"])
	assert.EqualValues(t, 2, decoded["voteFalse"])
	assert.Equal(t, true, decoded["disputed"])
}

func TestVoteKind(t *testing.T) {
	t.Run("column mapping", func(t *testing.T) {
		assert.Equal(t, "vote_interesting", VoteInteresting.Column())
		assert.Equal(t, "vote_mindblowing", VoteMindblowing.Column())
		assert.Equal(t, "vote_false", VoteFalse.Column())
	})

	t.Run("parse round trip", func(t *testing.T) {
		for _, kind := range []VoteKind{VoteInteresting, VoteMindblowing, VoteFalse} {
			parsed, ok := ParseVoteKind(kind.String())
			require.True(t, ok)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("unknown segment", func(t *testing.T) {
		_, ok := ParseVoteKind("voteHilarious")
		assert.False(t, ok)
	})

	t.Run("bump touches one counter", func(t *testing.T) {
		var f Fact
		VoteMindblowing.Bump(&f)
		assert.Equal(t, 0, f.VoteInteresting)
		assert.Equal(t, 1, f.VoteMindblowing)
		assert.Equal(t, 0, f.VoteFalse)
	})
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("politics"))
	assert.False(t, ValidCategory(""))
}
