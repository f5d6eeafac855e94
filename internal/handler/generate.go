package handler

//go:generate oapi-codegen --config=gen/cfg.yaml ../../spec/openapi.yaml
