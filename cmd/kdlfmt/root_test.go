package main

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseOptionsOmitsTraceLogWhenNotVerbose(t *testing.T) {
	oldVerbose := verbose
	verbose = false
	defer func() { verbose = oldVerbose }()

	opts := parseOptions()
	assert.Nil(t, opts.TraceLog)
}

func TestParseOptionsAttachesTraceLogWhenVerbose(t *testing.T) {
	oldVerbose := verbose
	oldLevel := log.GetLevel()
	verbose = true
	defer func() {
		verbose = oldVerbose
		log.SetLevel(oldLevel)
	}()

	opts := parseOptions()
	assert.NotNil(t, opts.TraceLog)
	assert.Equal(t, logrus.TraceLevel, log.GetLevel())
}
