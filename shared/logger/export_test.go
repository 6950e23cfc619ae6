package logger

var ConfigureTo = configure
