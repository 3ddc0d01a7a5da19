package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Boutique-api/pkg/textutil"
)

func TestFold(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Calça", "calca"},
		{"Bijuteria", "bijuteria"},
		{"ÓCULOS", "oculos"},
		{"Chapéus", "chapeus"},
		{"jeans", "jeans"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, textutil.Fold(tc.in), tc.in)
	}
}
