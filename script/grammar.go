package script

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is a sequence of control commands. Comments use // or /* */.
type Script struct {
	Commands []*Command `@@*`
}

// Command is one control-surface action.
type Command struct {
	Pos lexer.Position

	Click   *Click  `  "click" @@`
	Find    bool    `| @"find"`
	Regen   bool    `| @"regen"`
	Edit    bool    `| @"edit"`
	Restart bool    `| @"restart"`
	Pause   bool    `| @("pause" | "resume")`
	Speed   *string `| "speed" @("-"? Int)`
	Algo    *string `| "algo" @(Ident | String)`
	Wait    *string `| "wait" @Int`
	Quit    bool    `| @"quit"`
}

// Click holds pixel coordinates; negatives are accepted and later ignored.
type Click struct {
	X string `@("-"? Int)`
	Y string `@("-"? Int)`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))
