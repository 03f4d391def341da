package migrate

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestPrepareURLForDB(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain", url: "postgresql://db/f1board", want: "postgresql://db/f1board?sslmode=disable"},
		{name: "params", url: "postgresql://db/f1board?x=1", want: "postgresql://db/f1board?x=1&sslmode=disable"},
		{name: "keeps ssl", url: "postgresql://db/f1board?sslmode=require", want: "postgresql://db/f1board?sslmode=require"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, prepareURLForDB(tt.url), tt.want)
		})
	}
}
