package app

import (
	"github.com/vk/crmdeck/components/activityfeed"
	"github.com/vk/crmdeck/components/contactcard"
	"github.com/vk/crmdeck/components/contactstable"
	"github.com/vk/crmdeck/components/orgtable"
	"github.com/vk/crmdeck/internal/registry"
)

// coreComponents is the definitive list of all component packages that are
// compiled into the crmdeck binary.
var coreComponents = []registry.Module{
	&orgtable.Module{},
	&contactstable.Module{},
	&contactcard.Module{},
	&activityfeed.Module{},
}
