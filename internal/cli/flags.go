package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// optionFlag describes one non-positional flag, mirroring the teacher's
// declarative multiFlag table (name holds comma-separated short,long
// aliases) so usage text and registration stay in lockstep.
type optionFlag struct {
	name   string
	usage  string
	value  interface{}
	defVal interface{}
}

const usageHeader = "wrapforge - php://filter chain payload generator\n\n" +
	"Usage:\n  wrapforge [options] <path> <prefix> <suffix> <nb_bytes>\n\nOptions:\n"

// ParseArgs parses os.Args[1:] into Options: the four positional arguments
// named in §6 (path, prefix, suffix, nb_bytes) plus the output/padding
// /from-file/verbose flags.
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}

	flagSet := flag.NewFlagSet("wrapforge", flag.ContinueOnError)

	optionFlags := []optionFlag{
		{name: "o,output", usage: "File to write the payload to", value: &opts.Output, defVal: "chain.txt"},
		{name: "p,padding-character", usage: "Character to pad the prefix", value: &opts.Padding, defVal: "M"},
		{name: "f,from-file", usage: "Treat prefix/suffix as paths to files holding their value", value: &opts.FromFile, defVal: false},
		{name: "v,verbose", usage: "Verbose output", value: &opts.Verbose, defVal: false},
	}

	flagSet.Usage = func() {
		fmt.Fprint(os.Stderr, usageHeader)
		for _, f := range optionFlags {
			printFlagUsage(f)
		}
	}

	for _, f := range optionFlags {
		for _, name := range splitNames(f.name) {
			switch v := f.value.(type) {
			case *string:
				def, _ := f.defVal.(string)
				flagSet.StringVar(v, name, def, f.usage)
			case *bool:
				def, _ := f.defVal.(bool)
				flagSet.BoolVar(v, name, def, f.usage)
			}
		}
	}

	if err := flagSet.Parse(args); err != nil {
		return nil, argError("%v", err)
	}

	positional := flagSet.Args()
	if len(positional) < 4 {
		flagSet.Usage()
		return nil, argError("expected 4 positional arguments (path, prefix, suffix, nb_bytes), got %d", len(positional))
	}

	opts.Path = positional[0]
	opts.Prefix = positional[1]
	opts.Suffix = positional[2]

	nbytes, err := strconv.Atoi(positional[3])
	if err != nil {
		return nil, argError("nb_bytes must be an integer: %v", err)
	}
	opts.NBytes = nbytes

	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

func splitNames(combined string) []string {
	var names []string
	start := 0
	for i := 0; i <= len(combined); i++ {
		if i == len(combined) || combined[i] == ',' {
			names = append(names, combined[start:i])
			start = i + 1
		}
	}
	return names
}

func printFlagUsage(f optionFlag) {
	names := splitNames(f.name)
	if len(names) > 1 {
		fmt.Fprintf(os.Stderr, "  -%s, -%s\n", names[0], names[1])
	} else {
		fmt.Fprintf(os.Stderr, "  -%s\n", names[0])
	}
	if f.defVal != nil {
		fmt.Fprintf(os.Stderr, "        %s (Default: %v)\n", f.usage, f.defVal)
	} else {
		fmt.Fprintf(os.Stderr, "        %s\n", f.usage)
	}
}
