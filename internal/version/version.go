package version

const Value = "1.2.0"
