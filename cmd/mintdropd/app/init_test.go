package mintdrop

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenInitOptions(t *testing.T) {
	addr := "0102030405060708090A0B0C0D0E0F1011121314"
	cases := []struct {
		args []string
		cur  string
		addr string
	}{
		{nil, "IOV", ""},
		{[]string{"ONE"}, "ONE", ""},
		{[]string{"TWO", addr}, "TWO", addr},
		{[]string{"THR", addr, "FOO"}, "THR", addr},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			val, err := GenInitOptions(tc.args)
			assert.Nil(t, err)

			cc := fmt.Sprintf(`"ticker":"%s"`, tc.cur)
			assert.Equal(t, true, strings.Contains(string(val), cc))

			ca := fmt.Sprintf(`"address":"%s"`, tc.addr)
			if tc.addr == "" {
				// we just know there is an address, not what it is
				ca = ca[:len(ca)-1]
			}
			assert.Equal(t, true, strings.Contains(string(val), ca))
		})
	}
}

func TestGenInitOptionsBadInput(t *testing.T) {
	cases := map[string]struct {
		args []string
	}{
		"lowercase ticker":  {args: []string{"abc"}},
		"too long ticker":   {args: []string{"TOOLONG"}},
		"malformed address": {args: []string{"IOV", "zzzz"}},
		"short address":     {args: []string{"IOV", "0102030405"}},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := GenInitOptions(tc.args); err == nil {
				t.Fatal("an error was expected")
			}
		})
	}
}
