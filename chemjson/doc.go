package chemjson

//Package chemjson implements serialization and unserialization of
//molecules and charge results in JSON, so gasteiger programs can
//communicate with independent programs, written in any language that
//can read and write JSON, for instance via UNIX pipes.
