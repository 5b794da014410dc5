package pathutil

import "regexp"

// PlaceholderRegex matches TR-181 template instance placeholders like
// "{i}" in "Device.WiFi.Radio.{i}.Channel". It captures the placeholder
// name inside the braces.
var PlaceholderRegex = regexp.MustCompile(`\{([^}]+)\}`)
