package metrics

var FormatFixed = formatFixed
