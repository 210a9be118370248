package internal

// Version is the lernhelfer release version.
const Version = "0.1.0"
