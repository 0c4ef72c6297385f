package cli

import "strconv"
import "github.com/urfave/cli/v3"

// the urfave/cli package only supports int64 flags, the rotator takes an int shift
type ShiftFlag = cli.FlagBase[int, cli.IntegerConfig, shiftValue]

type shiftValue struct {
	val  *int
	base int
}

// Below functions are to satisfy the ValueCreator interface
func (i shiftValue) Create(val int, p *int, c cli.IntegerConfig) cli.Value {
	*p = val
	return &shiftValue{
		val:  p,
		base: c.Base,
	}
}

func (i shiftValue) ToString(b int) string {
	return strconv.Itoa(b)
}

// Below functions are to satisfy the flag.Value interface

func (i *shiftValue) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*i.val = v
	return err
}

func (i *shiftValue) Get() any { return *i.val }

func (i *shiftValue) String() string { return strconv.Itoa(*i.val) }
