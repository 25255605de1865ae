// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pipeline

import "github.com/jongio/script-core/echo"

// echoChain writes the formatted chain to the echo sink before any
// stage spawns: a dim "cmd" prefix, then each stage's cd:/env: markers,
// program, and display-quoted arguments, joined by the link symbols
// | (stdout), |& (stderr), and |&& (both). Quiet stages are omitted;
// echoing is fire-and-forget and never affects execution.
func (p *Pipeline) echoChain() {
	visible := false
	for _, s := range p.stages {
		if !s.quiet {
			visible = true
			break
		}
	}
	if !visible {
		return
	}

	e := echo.New()
	e.Styled("cmd", echo.BrightBlack)
	first := true
	for i, stage := range p.stages {
		if stage.quiet {
			continue
		}
		if !first {
			e.Styled(p.modes[i-1].symbol(), echo.Magenta)
		}
		first = false

		if stage.dir != "" {
			e.Styled("cd:", echo.BrightBlue)
			e.Styled(echo.Quote(stage.dir), echo.Underline, echo.BrightBlue)
		}
		for _, v := range stage.env {
			e.Styled("env:", echo.BrightBlue)
			e.Styled(echo.Quote(v.Key)+"="+echo.Quote(v.Value), echo.Underline, echo.BrightBlue)
		}
		e.Styled(echo.Quote(stage.program), echo.Bold, echo.Cyan)
		for _, arg := range stage.args {
			e.Styled(echo.Quote(arg), echo.Bold, echo.Underline)
		}
	}
	e.End()
}
