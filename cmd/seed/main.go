// seed genera el script SQL con los datos mínimos de arranque: el usuario
// administrador, las plantillas de correo por defecto y la matriz inicial de
// permisos por página.
//
// Uso: go run ./cmd/seed [contraseña-admin]
// Sin argumento usa la variable SEED_ADMIN_PASSWORD, y como último recurso
// "admin123" (solo para entornos de desarrollo).
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const outPath = "internal/infrastructure/postgres/migrations/002_seed.sql"

// Páginas del SPA sembradas en page_permissions. admin no necesita filas:
// el middleware siempre le concede acceso.
var defaultPermissions = []struct {
	role    string
	page    string
	allowed bool
}{
	{"manager", "inventory", true},
	{"manager", "suppliers", true},
	{"manager", "transactions", true},
	{"manager", "reports", true},
	{"manager", "deliveries", true},
	{"manager", "settings", false},
	{"operator", "inventory", true},
	{"operator", "suppliers", false},
	{"operator", "transactions", true},
	{"operator", "reports", false},
	{"operator", "deliveries", true},
	{"operator", "settings", false},
}

func main() {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	if password == "" {
		password = "admin123"
		fmt.Fprintln(os.Stderr, "AVISO: usando contraseña de desarrollo por defecto")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar hash bcrypt: %v\n", err)
		os.Exit(1)
	}

	var b strings.Builder
	b.WriteString("-- Datos de arranque: admin, plantillas de correo y permisos por página.\n")
	b.WriteString("-- Generado por cmd/seed. Volver a ejecutar regenera el hash del admin.\n\n")

	b.WriteString("INSERT INTO users (id, name, email, password_hash, role, status)\n")
	fmt.Fprintf(&b, "VALUES (gen_random_uuid(), 'Administrador', 'admin@almacen.local', %s, 'admin', 'active')\n", sqlString(string(hash)))
	b.WriteString("ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash;\n\n")

	b.WriteString("INSERT INTO email_formats (id, kind, subject, body, is_default)\nVALUES\n")
	fmt.Fprintf(&b, "  (gen_random_uuid(), 'purchase_order', %s, %s, TRUE),\n",
		sqlString("Pedido de compra {{order_id}}"),
		sqlString("Estimado {{contact_person}}:\n\nSolicitamos el siguiente pedido con fecha {{date}}:\n\n{{items}}\nTotal: {{total}}\n\n{{note}}\n\nSaludos,\nAlmacén"))
	fmt.Fprintf(&b, "  (gen_random_uuid(), 'low_stock', %s, %s, TRUE)\n",
		sqlString("Alerta de bajo stock: {{count}} artículos"),
		sqlString("Artículos en o bajo su umbral mínimo:\n\n{{items}}"))
	b.WriteString("ON CONFLICT DO NOTHING;\n\n")

	b.WriteString("INSERT INTO page_permissions (role, page, allowed)\nVALUES\n")
	for i, p := range defaultPermissions {
		sep := ","
		if i == len(defaultPermissions)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %t)%s\n", p.role, p.page, p.allowed, sep)
	}
	b.WriteString("ON CONFLICT (role, page) DO NOTHING;\n")

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "crear directorio: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, []byte(b.String()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "escribir %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Escrito %s (%d permisos)\n", outPath, len(defaultPermissions))
}

// sqlString escapa un literal para SQL usando sintaxis E'...' cuando hay
// saltos de línea o comillas.
func sqlString(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	if strings.ContainsAny(escaped, "\n\\") {
		escaped = strings.ReplaceAll(escaped, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\n", "\\n")
		return "E'" + escaped + "'"
	}
	return "'" + escaped + "'"
}
