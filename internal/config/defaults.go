package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "agrilink",
}

var defaultPayment = Payment{
	SettleDelay: 2 * time.Second,
}

var defaultFleet = Fleet{
	ReleaseInterval: 10 * time.Second,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultPayment returns the default payment settings.
func DefaultPayment() Payment {
	return defaultPayment
}

// DefaultFleet returns the default fleet settings.
func DefaultFleet() Fleet {
	return defaultFleet
}
