// Package cli implements the interactive SmartTraffic terminal client.
//
// The REPL stands in for the app's screen navigator: signing up and logging
// in unlock the speed detector, route finder and settings screens.
//
//	Logged out:  help, signup, login, users, exit
//	Logged in:   help, speed, route, settings, toggle <name>, users, logout, exit
//
// Passwords are read without echo when stdin is a terminal.
package cli
