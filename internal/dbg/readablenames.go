package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, so that loops flowing
// through an offset or merge pass can be told apart in logs. Names are
// generated lazily and never forgotten, so callers must only ask for one when
// the name is actually going to be printed.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// The same name will not refer to the same loop between runs
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	v := reflect.ValueOf(obj)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// Number of objects that have been given a name.
func Count() int {
	return len(memo)
}
