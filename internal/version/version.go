package version

// Version is stamped manually at release time.
const Version = "0.2.0"
