// Package repository handles all interactions with the database.
//
// It contains the SQL statements and methods to fetch or persist
// users, properties and reservations, abstracting SQL logic away from
// callers. Every method runs through an injected Querier and returns
// errors converted by sqlerr; nothing here logs.
package repository
