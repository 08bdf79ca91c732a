package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

func recordAt(srcPath string) m.Record {
	return m.Record{Target: &m.Target{SrcPath: &srcPath}}
}

func TestIncludeFilter_Includes(t *testing.T) {
	tests := []struct {
		name    string
		paths   m.IncludePaths
		srcPath string
		want    bool
	}{
		{"default mount covers everything", m.IncludePaths{"/code-copy/"}, "/code-copy/anything.rs", true},
		{"outside include path", m.IncludePaths{"/code-copy/src"}, "/code-copy/vendor/x.rs", false},
		{"inside include path", m.IncludePaths{"/code-copy/src"}, "/code-copy/src/lib.rs", true},
		{"substring match", m.IncludePaths{"/code-copy/src"}, "/code-copy/src-gen/x.rs", true},
		{"second entry matches", m.IncludePaths{"/code-copy/benches/", "/code-copy/tests/"}, "/code-copy/tests/it.rs", true},
		{"empty list", m.IncludePaths{}, "/code-copy/src/lib.rs", false},
		{"outside mount", m.IncludePaths{"/code-copy/"}, "/home/user/.cargo/registry/x.rs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIncludeFilter(tt.paths).Includes(recordAt(tt.srcPath))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIncludeFilter_MissingSourcePath(t *testing.T) {
	filter := NewIncludeFilter(m.IncludePaths{"/code-copy/"})

	_, err := filter.Includes(m.Record{})
	assert.ErrorIs(t, err, m.ErrMalformedRecord)

	_, err = filter.Includes(m.Record{Target: &m.Target{}})
	assert.ErrorIs(t, err, m.ErrMalformedRecord)
}
