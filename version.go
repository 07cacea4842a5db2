package crafting

var Version = "unknown"
