package model

// Top bar tabs.
const (
	TabTorrents = iota
	TabStatesTrackers
	TabPreferences
	TabHelp
)

// MiddleOwnerTab is the top tab whose content the middle bar belongs to.
const MiddleOwnerTab = TabTorrents

// Status bar fields.
const (
	FieldConnections = iota
	FieldTransfer
	FieldProtocol
	FieldDHT
)

var (
	TopTabs = []string{
		"Torrents",
		"States and trackers",
		"Preferences",
		"Help",
	}

	MiddleTabs = []string{
		"Status",
		"Details",
		"Peers",
		"Options",
	}

	// StatusTitles are the labels of the status bar fields, the bottom bar's "tabs".
	StatusTitles = []string{
		"Connections",
		"Transfer speed",
		"Protocol traffic",
		"DHT nodes",
	}
)
