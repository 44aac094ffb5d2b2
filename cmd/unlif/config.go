package main

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml"
)

// Lets kong pull flag values out of a toml file. Keys are the flag names,
// with either dashes or underscores (preview-width or preview_width).
func TomlLoader(r io.Reader) (kong.Resolver, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return nil, err
	}
	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		return lookupFlag(tree, flag.Name), nil
	}), nil
}

func lookupFlag(tree *toml.Tree, name string) interface{} {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		if value := tree.Get(key); value != nil {
			return value
		}
	}
	return nil
}
