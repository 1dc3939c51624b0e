// Package domain contains the core business entities of the application:
// quiz answers, gift suggestions, users, saved gift ideas, and recipient
// profiles. Domain types validate themselves and carry no persistence or
// transport concerns.
package domain
