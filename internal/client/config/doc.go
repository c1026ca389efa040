// Package config loads runtime configuration for the credkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected with -c or -config, or
//     the CREDKEEPER_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   data directory
//	-l string   message language (en, de)
//	-v string   log level (debug, info, warn, error)
//	-u string   username policy (strict, permissive)
//	-p string   password storage (bcrypt, sha512crypt, plain)
//	-r string   remember-me scheme (sealed, legacy)
//
// # JSON schema
//
// Keys left out of the file keep their default:
//
//	{
//	  "data_dir": "/home/me/.config/credkeeper",
//	  "database_file": "credkeeper.db",
//	  "language": "de",
//	  "log_level": "info",
//	  "username_policy": "strict",
//	  "permissive_registration": false,
//	  "password_storage": "bcrypt",
//	  "bcrypt_cost": 12,
//	  "remember_me_scheme": "sealed"
//	}
package config
