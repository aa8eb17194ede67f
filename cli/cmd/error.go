package cmd

import "github.com/ardnew/aconst/named"

var (
	ErrNoSource    = named.NewError("no manifest sources (use --source)")
	ErrUnknownName = named.NewError("unknown name")
	ErrWriteConfig = named.NewError("write configuration file")
	ErrFileExists  = named.NewError("file exists (use --force to overwrite)")
	ErrConfigPath  = named.NewError("configuration path undefined")
)
