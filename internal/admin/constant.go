package admin

const MinPasswordLength = 8
