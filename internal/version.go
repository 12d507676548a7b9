package internal

// Version is the current schooltrans release
const Version = "0.1.0"
