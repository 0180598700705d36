package main

import (
	"github.com/payproto/payproto/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.PCTL)
