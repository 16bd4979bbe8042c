package pages

import "strings"

// Preference is one node of the preferences outline. Value is the default, empty for groups.
// Choice marks groups where exactly one child applies.
type Preference struct {
	Name     string
	Value    string
	Choice   bool
	Children []Preference
}

func leaf(name, value string) Preference { return Preference{Name: name, Value: value} }

func group(name string, children ...Preference) Preference {
	return Preference{Name: name, Children: children}
}

func choice(name string, children ...Preference) Preference {
	return Preference{Name: name, Choice: true, Children: children}
}

func proxyChoice(name string) Preference {
	return choice(name,
		leaf("None", "y"),
		leaf("Socksv4", ""),
		leaf("Socksv5", ""),
		leaf("Socksv5 with authentication", ""),
		leaf("HTTP", ""),
		leaf("HTTP with authentication", ""),
	)
}

func encryptionChoice(name string) Preference {
	return choice(name, leaf("Forced", "y"), leaf("Enabled", ""), leaf("Disabled", ""))
}

// DefaultPreferences is the read-only outline shown on the Preferences tab.
func DefaultPreferences() []Preference {
	return []Preference{
		group("Downloads",
			choice("Allocation", leaf("Use full allocation", "y"), leaf("Use sparse allocation", "")),
			leaf("Prioritise first and last pieces of files", ""),
			leaf("Preallocate all files", "y"),
			leaf("Add torrents in paused state", ""),
		),
		group("Network",
			choice("Incoming ports", leaf("Use random ports", "y"), leaf("Range", "6881-6891")),
			choice("Outgoing ports", leaf("Use random ports", "y"), leaf("Range", "0-0")),
			leaf("Interface", ""),
			group("Type of Service", leaf("Peer ToS Byte", "0x00")),
			group("Network extras",
				leaf("Universal Plug and Play", "y"),
				leaf("Network Address Translator Port Mapping Protocol", "y"),
				leaf("Peer Exchange", "y"),
				leaf("Local Service Discovery", "y"),
				leaf("Distributed hash table", "y"),
			),
			group("Encryption",
				encryptionChoice("Inbound"),
				encryptionChoice("Outbound"),
				choice("Level", leaf("Handshake", ""), leaf("Full stream", "y"), leaf("Either", "")),
				leaf("Encrypt entire stream", "y"),
			),
		),
		group("Proxy",
			proxyChoice("Peer"),
			proxyChoice("Web Seed"),
			proxyChoice("Tracker"),
			proxyChoice("Distributed hash table"),
		),
		group("Bandwidth",
			group("Global bandwidth usage",
				leaf("Maximum connections", "200"),
				leaf("Maximum upload slots", "5"),
				leaf("Maximum download speed", "unlimited"),
				leaf("Maximum upload speed", "unlimited"),
				leaf("Maximum half-open connections", "50"),
				leaf("Maximum connection attempts per second", "20"),
				leaf("Ignore limits on local network", "y"),
				leaf("Rate limit IP overhead", "y"),
			),
			group("Per torrent bandwidth usage",
				leaf("Maximum connections", "inherit global limit"),
				leaf("Maximum upload slots", "inherit global limit"),
				leaf("Maximum download speed", "inherit global limit"),
				leaf("Maximum upload speed", "inherit global limit"),
			),
		),
		group("Queue",
			leaf("Queue new torrents to the top", ""),
			group("Active torrents",
				leaf("Total active", "27"),
				leaf("Total active downloading", "20"),
				leaf("Total active seeding", "7"),
				leaf("Do not count slow torrents", "y"),
			),
			group("Seeding",
				leaf("Share ratio limit", "2"),
				leaf("Seed limit ratio", "7"),
				leaf("Seed limit", "180 m"),
				group("Stop seeding when share ratio reaches (never)",
					leaf("Remove torrent when share ratio is reached", ""),
				),
			),
		),
		group("Cache",
			leaf("Cache size", "512 blocks of 16 K"),
			leaf("Cache expiry", "60 seconds"),
		),
		group("GeoIP database",
			leaf("IPv4 location", "/usr/share/GeoIP/GeoIP.dat"),
			leaf("IPv6 location", "/usr/share/GeoIP/GeoIPv6.dat"),
		),
	}
}

// PreferenceLines flattens the outline, indenting each level by three spaces.
func PreferenceLines(prefs []Preference) []string {
	var lines []string
	for _, pref := range prefs {
		lines = appendPreference(lines, pref, 0)
	}

	return lines
}

func appendPreference(lines []string, pref Preference, depth int) []string {
	line := strings.Repeat("   ", depth) + pref.Name
	switch {
	case pref.Choice:
		line += " (either)"
	case pref.Value != "":
		line += " (" + pref.Value + ")"
	}

	lines = append(lines, line)
	for _, child := range pref.Children {
		lines = appendPreference(lines, child, depth+1)
	}

	return lines
}
