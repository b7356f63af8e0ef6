package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Dyastin-0/hexrw/cmd"
	"github.com/Dyastin-0/hexrw/styles"
)

func main() {
	c := cmd.New()

	if err := c.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, styles.ERROR.Render(err.Error()))
		os.Exit(1)
	}
}
