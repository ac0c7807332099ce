package main

// @title           AquaGás API
// @version         1.0
// @description     API do painel de gestão da distribuidora de água e gás

// @contact.name   Suporte
// @contact.email  suporte@aquagas.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
