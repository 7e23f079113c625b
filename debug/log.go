package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/scorex/encode"
	"github.com/signadot/scorex/ir"
)

type XML struct{ *ir.Node }

func (x XML) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x.Node, buf); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x.Node)
	}
	return buf.String()
}

// Logf writes to stderr. *ir.Node arguments are encoded as XML.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case *ir.Node:
			args[i] = XML{x}.String()
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
