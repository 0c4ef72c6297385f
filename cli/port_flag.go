package cli

import (
	"fmt"
	"strconv"
)
import "github.com/urfave/cli/v3"

// the urfave/cli package only supports int64 flags, ports also need to be a usable TCP port
type PortFlag = cli.FlagBase[int, cli.IntegerConfig, portValue]

type portValue struct {
	val  *int
	base int
}

func (i portValue) Create(val int, p *int, c cli.IntegerConfig) cli.Value {
	*p = val
	return &portValue{
		val:  p,
		base: c.Base,
	}
}

func (i portValue) ToString(b int) string {
	return strconv.Itoa(b)
}

func (i *portValue) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < 1 || v > 65535 {
		return fmt.Errorf("value out of range: %v is not between 1 and 65535", v)
	}
	*i.val = v
	return err
}

func (i *portValue) Get() any { return *i.val }

func (i *portValue) String() string { return strconv.Itoa(*i.val) }
