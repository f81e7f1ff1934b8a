package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/FentusGames/StockPile/internal/catalog"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "dump":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mobdat dump <file>")
			return
		}
		records, err := catalog.LoadRoster(resolve(os.Args[2]))
		if err != nil {
			fmt.Printf("Invalid roster: %v\n", err)
			os.Exit(1)
		}
		for i, r := range records {
			fmt.Printf("%4d  id=0x%08X  index=%4d  zone=%3d  %q\n", i, r.ServerID, r.TargetIndex(), r.Zone(), r.Name)
		}
		fmt.Printf("%d records\n", len(records))
	case "names":
		if len(os.Args) < 3 {
			fmt.Println("Usage: mobdat names <file> [potential]")
			return
		}
		records, err := catalog.LoadRoster(resolve(os.Args[2]))
		if err != nil {
			fmt.Printf("Invalid roster: %v\n", err)
			os.Exit(1)
		}
		includePotential := len(os.Args) > 3 && os.Args[3] == "potential"
		c := catalog.New(0, "", records)
		for _, name := range c.Visible(includePotential) {
			fmt.Println(name)
		}
	case "build":
		if len(os.Args) < 5 {
			fmt.Println("Usage: mobdat build <out> <zone> <name>...")
			return
		}
		zone, err := strconv.Atoi(os.Args[3])
		if err != nil || zone < 0 || zone > 0x7F {
			fmt.Printf("Invalid zone: %s\n", os.Args[3])
			os.Exit(1)
		}
		names := os.Args[4:]
		records := make([]catalog.Record, 0, len(names))
		for i, name := range names {
			// Индекс слота с 1: нулевой зарезервирован под "нет цели"
			records = append(records, catalog.Record{
				Name:     name,
				ServerID: uint32(zone)<<12 | uint32(i+1),
			})
		}
		if err := catalog.SaveRoster(resolve(os.Args[2]), records); err != nil {
			fmt.Printf("Failed to write roster: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d records\n", len(records))
	default:
		printHelp()
	}
}

// resolve - относительные пути считаются от STOCKPILE_ROOT, если он задан
func resolve(path string) string {
	root := os.Getenv("STOCKPILE_ROOT")
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func printHelp() {
	fmt.Println(`Mob roster utility - просмотр и сборка ростеров зон
Commands:
  dump <file>                   - все записи ростера (id, индекс, зона, имя)
  names <file> [potential]      - уникальные имена, как их видит каталог
  build <out> <zone> <name>...  - записать синтетический ростер
Env:
  STOCKPILE_ROOT                - корень для относительных путей`)
}
