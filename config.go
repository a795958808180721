package parsing

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with all the
// default values expected by Run and by the command line tool
func NewConfig() *Config {
	m := make(Config)
	// wrap the input reader with a packrat memo table
	m.SetBool("parse.packrat", false)
	// only succeed if the whole input was consumed
	m.SetBool("parse.require_end", false)
	// log every step of the top level parser
	m.SetBool("parse.trace", false)
	// when to color diagnostics: auto, always or never
	m.SetString("cli.color", "auto")
	// format of parsed values: json or yaml
	m.SetString("cli.output", "json")
	// commonlog verbosity, 0 is quiet and each step shows more
	m.SetInt("log.verbosity", 0)
	// default depth of the nesting stress test
	m.SetInt("nest.depth", 10000)
	return &m
}

// LoadConfigFile reads a YAML file, or a TOML one when its name ends
// with `.toml`, on top of the values in c
func (c *Config) LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't read config file: %w", err)
	}
	load := c.LoadYAML
	if filepath.Ext(path) == ".toml" {
		load = c.LoadTOML
	}
	if err := load(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadYAML reads settings from a YAML document.  Nested mappings are
// flattened into dotted paths, so `parse: {packrat: true}` sets
// `parse.packrat`.  Settings that already exist must keep their type.
func (c *Config) LoadYAML(data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("can't parse config: %w", err)
	}
	return c.load("", raw)
}

// LoadTOML is LoadYAML for TOML documents, where tables play the part
// of nested mappings
func (c *Config) LoadTOML(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("can't parse config: %w", err)
	}
	return c.load("", raw)
}

func (c *Config) load(prefix string, raw map[string]any) error {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		var typ cfgValType
		switch v := raw[k].(type) {
		case map[string]any:
			if err := c.load(path, v); err != nil {
				return err
			}
			continue
		case bool:
			typ = cfgValType_Bool
		case int:
			typ = cfgValType_Int
		case int64:
			typ = cfgValType_Int
			raw[k] = int(v)
		case string:
			typ = cfgValType_String
		default:
			return fmt.Errorf("setting `%s` has unsupported value `%v`", path, v)
		}
		if existing, ok := (*c)[path]; ok && existing.typ != typ {
			return fmt.Errorf("setting `%s` expects %s but got %s", path, existing.typ, typ)
		}
		switch typ {
		case cfgValType_Bool:
			c.SetBool(path, raw[k].(bool))
		case cfgValType_Int:
			c.SetInt(path, raw[k].(int))
		case cfgValType_String:
			c.SetString(path, raw[k].(string))
		}
	}
	return nil
}

// YAML renders all settings as a flat YAML mapping
func (c *Config) YAML() ([]byte, error) {
	flat := make(map[string]any, len(*c))
	for k, v := range *c {
		flat[k] = v.value()
	}
	return yaml.Marshal(flat)
}

// Debug writes every setting and its type to w
func (c *Config) Debug(w io.Writer) {
	fmt.Fprintln(w, "Configuration")

	keys := make([]string, 0, len(*c))
	width := 0
	for k := range *c {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s : %s\n", k, strings.Repeat(" ", width-len(k)), (*c)[k])
	}
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("can't assign `%s` to a `%s` setting", v.typ, vt))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't read `%s` from a `%s` setting", vt, v.typ))
	}
}

func (v *cfgVal) value() any {
	switch v.typ {
	case cfgValType_Bool:
		return v.asBool
	case cfgValType_Int:
		return v.asInt
	case cfgValType_String:
		return v.asString
	default:
		return nil
	}
}

func (v *cfgVal) String() string {
	switch v.typ {
	case cfgValType_Bool:
		return fmt.Sprintf("%t (bool)", v.asBool)
	case cfgValType_Int:
		return fmt.Sprintf("%d (int)", v.asInt)
	case cfgValType_String:
		return fmt.Sprintf("%s (string)", v.asString)
	case cfgValType_Undefined:
		return "(undefined)"
	default:
		panic(fmt.Sprintf("unknown cfgVal type: %v", v.typ))
	}
}

// set replaces the value under path.  Once a setting exists it
// can't change its type.
func (c *Config) set(path string, v *cfgVal) {
	if existing, ok := (*c)[path]; ok {
		v.assignType(existing.typ)
	}
	(*c)[path] = v
}

// get returns the value under path or panics when path is unknown or
// holds a value of another type
func (c *Config) get(path string, vt cfgValType) *cfgVal {
	val, ok := (*c)[path]
	if !ok {
		panic(fmt.Sprintf("%s setting `%s` does not exist", vt, path))
	}
	val.checkType(vt)
	return val
}

func (c *Config) SetBool(path string, v bool) {
	c.set(path, &cfgVal{typ: cfgValType_Bool, asBool: v})
}

func (c *Config) SetInt(path string, v int) {
	c.set(path, &cfgVal{typ: cfgValType_Int, asInt: v})
}

func (c *Config) SetString(path string, v string) {
	c.set(path, &cfgVal{typ: cfgValType_String, asString: v})
}

func (c *Config) GetBool(path string) bool     { return c.get(path, cfgValType_Bool).asBool }
func (c *Config) GetInt(path string) int       { return c.get(path, cfgValType_Int).asInt }
func (c *Config) GetString(path string) string { return c.get(path, cfgValType_String).asString }
