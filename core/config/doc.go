// Package config provides configuration management for stock-sync.
//
// It uses Viper to read environment variables (and a .env file in the working
// directory). Defaults live in the `default` struct tags of each section and
// nested keys map to upper-case variables with underscores, so ozon.api_key is
// read from OZON_API_KEY.
//
// # Configuration Structure
//
//   - Log: logging level and format
//   - Feed: supplier archive location and sheet layout
//   - Ozon: Seller API credentials, page and batch sizes
//   - Yandex: Partner API token, FBS/DBS campaigns and warehouses
//   - Server: HTTP trigger API port and key
//   - Storage: S3/MinIO credentials, bucket and report retention
//   - Database: run journal connection
//
// Variable names of earlier deployments (SELLER_TOKEN, CLIENT_ID, MARKET_TOKEN,
// FBS_ID, DBS_ID, WAREHOUSE_FBS_ID, WAREHOUSE_DBS_ID) are still honoured.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Ozon.StockBatchSize)
package config
