package util

import (
	"strconv"
	"testing"

	"github.com/go-test/deep"
	"github.com/nalgeon/be"
)

func TestContains(t *testing.T) {
	be.True(t, Contains([]string{"==", "!="}, "!="))
	be.True(t, !Contains([]string{"==", "!="}, "<"))
	be.True(t, !Contains(nil, 0))
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if diff := deep.Equal(got, []string{"1", "2", "3"}); diff != nil {
		t.Error(diff)
	}
}

func TestIsValidIdentifier(t *testing.T) {
	be.True(t, IsValidIdentifier("hello_world2"))
	be.True(t, IsValidIdentifier("_x"))
	be.True(t, !IsValidIdentifier(""))
	be.True(t, !IsValidIdentifier("2fast"))
	be.True(t, !IsValidIdentifier("my-mod"))
}
