package usecase

const LogPrefixAsk = "internal.assistant.usecase.Ask"
