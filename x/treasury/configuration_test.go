package treasury

import (
	"testing"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestConfigurationValidate(t *testing.T) {
	var (
		owner     = weavetest.NewCondition().Address()
		approverA = weavetest.NewCondition().Address()
		approverB = weavetest.NewCondition().Address()
	)

	valid := Configuration{
		Metadata:  &weave.Metadata{Schema: 1},
		Owner:     owner,
		Approvers: []weave.Address{approverA, approverB},
		Quorum:    2,
	}

	cases := map[string]struct {
		Mod func(*Configuration)
		// Field name to error mapping. Use `nil` if no error is
		// expected.
		WantErrs map[string]*errors.Error
	}{
		"valid configuration": {
			Mod: nil,
			WantErrs: map[string]*errors.Error{
				"Metadata":  nil,
				"Owner":     nil,
				"Approvers": nil,
				"Quorum":    nil,
			},
		},
		"missing metadata": {
			Mod: func(c *Configuration) { c.Metadata = nil },
			WantErrs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing owner": {
			Mod: func(c *Configuration) { c.Owner = nil },
			WantErrs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
		"no approvers": {
			Mod: func(c *Configuration) { c.Approvers = nil },
			WantErrs: map[string]*errors.Error{
				"Approvers": errors.ErrEmpty,
				"Quorum":    errors.ErrAmount,
			},
		},
		"malformed approver": {
			Mod: func(c *Configuration) {
				c.Approvers = []weave.Address{approverA, weave.Address("x")}
			},
			WantErrs: map[string]*errors.Error{
				"Approvers": errors.ErrInput,
			},
		},
		"duplicated approver": {
			Mod: func(c *Configuration) {
				c.Approvers = []weave.Address{approverA, approverA}
			},
			WantErrs: map[string]*errors.Error{
				"Approvers": errors.ErrDuplicate,
			},
		},
		"zero quorum": {
			Mod: func(c *Configuration) { c.Quorum = 0 },
			WantErrs: map[string]*errors.Error{
				"Quorum": errors.ErrAmount,
			},
		},
		"quorum larger than the group": {
			Mod: func(c *Configuration) { c.Quorum = 3 },
			WantErrs: map[string]*errors.Error{
				"Quorum": errors.ErrAmount,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			conf := valid
			if tc.Mod != nil {
				tc.Mod(&conf)
			}
			err := conf.Validate()
			for field, wantErr := range tc.WantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
