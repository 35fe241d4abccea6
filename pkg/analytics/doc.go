// Package analytics turns a form and its responses into chart data and
// keeps the view and response counters of forms up to date.
package analytics
