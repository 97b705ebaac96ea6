package config

import "time"

// Base application details
const AppName = "tide-input"
const DefaultConfigFileName = "config.toml"
const Version = "0.1.0"

// Backends
const BackendTcell = "tcell"
const BackendTea = "tea"

// Field defaults
const DefaultLabel = "Name: "
const DefaultWidth = 15
const DefaultInitial = "World"

// Status Bar
const StatusBarHeight = 1
const MessageTimeout = 4 * time.Second
