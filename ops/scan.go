/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  scan.go - Implementa l'operació SCAN. Recorre els fitxers buscant
 *            imatges de boot.
 *
 */

package ops

import (
  "fmt"
  "os"

  "github.com/adriagipas/sunxifw/imgs"
  "github.com/adriagipas/sunxifw/utils"
)


/**********************/
/* FUNCIONS PÚBLIQUES */
/**********************/

func Scan ( args *utils.Args ) error {

  // No es suporten arguments
  if len(args.OpArgs) != 0 {
    return fmt.Errorf ( "(SCAN) invalid arguments: %v", args.OpArgs )
  }

  // Executa operació. Un fitxer que falla no impedeix escanejar els
  // següents.
  print_name := len(args.Files)>1
  for name,file := range args.Files {
    fmt.Println("")
    if print_name {
      fmt.Printf("  %s) \"%s\"\n",name,file)
      fmt.Println("")
    }
    if err := imgs.ScanFile ( file, os.Stdout, "    ",
      args.Verbose ); err != nil {
      utils.Warning ( "%v", err )
    }
  }
  fmt.Println("")

  return nil

} // end Scan
