// Package config provides configuration loading for the Verdana site.
//
// Configuration is stored in verdana.json in the working directory, with
// environment overrides for deployment (VERDANA_HOST, VERDANA_PORT,
// VERDANA_LOG_LEVEL). The file is optional; every field has a default.
//
// # Configuration File Structure
//
//	{
//	  "name": "verdana-web",
//	  "host": "0.0.0.0",
//	  "port": 8080,
//	  "shutdownTimeout": "10s",
//	  "dispatchQueueSize": 64,
//	  "logLevel": "info"
//	}
package config
