package xmain

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"
)

// Opts registers flags whose defaults may come from the environment.
type Opts struct {
	Args  []string
	Flags *pflag.FlagSet
	env   *xos.Env
	log   *cmdlog.Logger

	envs []envFlag
}

type envFlag struct {
	key  string
	flag string
}

func NewOpts(env *xos.Env, log *cmdlog.Logger, args []string) *Opts {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.SortFlags = false
	flags.Usage = func() {}
	flags.SetOutput(io.Discard)
	return &Opts{
		Args:  args,
		Flags: flags,
		env:   env,
		log:   log,
	}
}

// Help lists the flags followed by the environment variables backing them.
func (o *Opts) Help() string {
	b := &strings.Builder{}
	o.Flags.SetOutput(b)
	o.Flags.PrintDefaults()
	o.Flags.SetOutput(io.Discard)

	if len(o.envs) == 0 {
		return strings.TrimRight(b.String(), "\n")
	}
	b.WriteString("\nEnvironment variables (flags take precedence):\n")
	w := 0
	for _, e := range o.envs {
		if len(e.key) > w {
			w = len(e.key)
		}
	}
	for i, e := range o.envs {
		fmt.Fprintf(b, "  $%-*s  --%s", w, e.key, e.flag)
		if i != len(o.envs)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (o *Opts) lookup(key, flag string) string {
	if key == "" {
		return ""
	}
	o.envs = append(o.envs, envFlag{key: key, flag: flag})
	v := strings.TrimSpace(o.env.Getenv(key))
	if v != "" {
		o.log.Debug.Printf("$%s=%q sets the default of --%s", key, v, flag)
	}
	return v
}

func (o *Opts) String(envKey, flag, shortFlag string, defaultVal, usage string) *string {
	if v := o.lookup(envKey, flag); v != "" {
		defaultVal = v
	}
	return o.Flags.StringP(flag, shortFlag, defaultVal, usage)
}

// Choice is String with the accepted values appended to the usage.
// Validating the value is left to the caller's parser.
func (o *Opts) Choice(envKey, flag, shortFlag string, defaultVal string, choices []string, usage string) *string {
	usage = fmt.Sprintf("%s One of %s.", usage, strings.Join(choices, ", "))
	return o.String(envKey, flag, shortFlag, defaultVal, usage)
}

func (o *Opts) Int(envKey, flag, shortFlag string, defaultVal int, usage string) (*int, error) {
	if v := o.lookup(envKey, flag); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("$%s: expected an integer, found %q", envKey, v)
		}
		defaultVal = i
	}
	return o.Flags.IntP(flag, shortFlag, defaultVal, usage), nil
}

func (o *Opts) Bool(envKey, flag, shortFlag string, defaultVal bool, usage string) (*bool, error) {
	if v := o.lookup(envKey, flag); v != "" {
		b, err := parseBool(v)
		if err != nil {
			return nil, fmt.Errorf("$%s: %w", envKey, err)
		}
		defaultVal = b
	}
	return o.Flags.BoolP(flag, shortFlag, defaultVal, usage), nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("expected a bool, found %q", s)
}
