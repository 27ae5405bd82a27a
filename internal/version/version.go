package version

// Version is the application version, logged at startup
var Version = "0.1.0"
