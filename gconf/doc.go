/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object in the database under the
"_c:<package>" key. The object is loaded from the "conf" section of the
genesis file, validated and saved by InitConfig, and read back with Load
whenever an operation needs it.
*/
package gconf
