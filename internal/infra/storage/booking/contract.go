package booking

import "github.com/m04kA/incubator-booking/pkg/dbmetrics"

// DBExecutor переиспользуем интерфейс из dbmetrics (*sql.DB, *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
