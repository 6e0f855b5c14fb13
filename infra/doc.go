// Package infra contains technical adapters such as the MQTT notice
// publisher, metric sinks and dataset stores. These packages should depend
// only on the interfaces defined in the core packages.
package infra
