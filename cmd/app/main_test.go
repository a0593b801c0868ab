package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/studentportal/portal/config"
)

func TestMainRunsWithLoadedConfig(t *testing.T) { //nolint:paralleltest // swaps package-level function pointers
	origConfig, origRun := initializeConfigFunc, runAppFunc

	t.Cleanup(func() {
		initializeConfigFunc, runAppFunc = origConfig, origRun
	})

	want := &config.Config{}
	want.App.Name = "portal-test"

	initializeConfigFunc = func() (*config.Config, error) { return want, nil }

	var got *config.Config

	runAppFunc = func(cfg *config.Config) { got = cfg }

	main()

	assert.Same(t, want, got)
}
