/*
Package observability provides tools for monitoring the Canova flow engine and services.

It includes Prometheus collectors for flow builds, fill navigation, publications,
submissions and HTTP traffic, and lifecycle hooks that log events and record them
as metrics.
*/
package observability
